// Package config loads git-pro settings.
//
// Settings come from two optional YAML files, applied in order:
//   - the user file ($GITPRO_CONFIG, or git-pro/config.yml under the user config dir)
//   - the repository file (gitpro.yml inside the git directory)
//
// Keys present in a later file override the earlier ones; absent keys keep their value.
package config
