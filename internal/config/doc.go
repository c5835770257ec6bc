// PeerRank - Similarity-Weighted Collaborative Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peerrank

/*
Package config loads PeerRank configuration.

Configuration is layered with koanf, each layer overriding the previous one:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file
 3. Environment variables

# Config File

The file is looked up in order:

  - $PEERRANK_CONFIG_PATH
  - peerrank.yaml, peerrank.yml (working directory)
  - /etc/peerrank/config.yaml

Example:

	recommend:
	  metric: pearson
	  degenerate_policy: strict
	  unrated_only: true
	  workers: 4
	logging:
	  level: debug
	  format: console

# Environment Variables

Recommendation engine:
  - PEERRANK_METRIC: euclidean, pearson, tanimoto, cosine (default: euclidean)
  - PEERRANK_DEGENERATE_POLICY: lenient, strict (default: lenient)
  - PEERRANK_UNRATED_ONLY: true/false (default: false)
  - PEERRANK_WORKERS: 1-256 (default: 1)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: true/false (default: false)

Other environment variables are ignored.

# Usage

	cfg, err := config.Load()
	if err != nil {
	    return err
	}
	engine, err := config.NewEngine(cfg)

Hot reload of the file is available through Watch; the callback receives the
freshly loaded and validated Config, or the load error.
*/
package config
