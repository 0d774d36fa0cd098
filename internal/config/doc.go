// Package config manages user-level settings stored at
// ~/.create-onchain-agent/config.yaml. It provides functions to load, read,
// and write configuration keys such as the default network, wallet provider,
// and model provider used to seed new projects.
package config
