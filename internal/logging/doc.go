// PeerRank - Similarity-Weighted Collaborative Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peerrank

// Package logging builds zerolog loggers for PeerRank and carries request
// IDs and loggers through context.Context.
//
// The config package turns LOG_LEVEL, LOG_FORMAT and LOG_CALLER into a
// Config and installs it with Init:
//
//	logging.Init(cfg.Logging.ToLogging())
//	engine, err := recommend.NewEngine(&cfg.Recommend, logging.Logger())
//
// A caller can attach its own logger and request ID to a single call:
//
//	ctx = logging.ContextWithLogger(ctx, requestLogger)
//	ctx = logging.ContextWithRequestID(ctx, id)
//	resp, err := engine.Recommend(ctx, req)
package logging
