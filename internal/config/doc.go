// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the activity server and the terminal client.
//
// Configuration is assembled from the following sources; later sources
// override earlier non-zero fields:
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The entry points are [GetServerConfig] and [GetClientConfig]; both build a
// [StructuredConfig] and project the fields their binary needs.
package config
