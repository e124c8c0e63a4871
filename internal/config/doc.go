// Package config defines the configuration of the repeaterd daemon.
//
// Configuration comes from a single YAML file, read once at startup
// with viper. Field defaults are declared on the structs themselves
// (creasty/defaults) so a missing or partial file still yields a
// runnable configuration.
//
// # Structure
//
//	Configuration
//	├── NodeName    - Human-readable repeater name (default "Repeater")
//	├── PublicKey   - Node public key advertised to the UI
//	├── LogLevel    - debug|info|warn|error (default "info")
//	├── LogFormat   - console|json (default "console")
//	└── Web         - Embedded web server settings
//
// # Web section
//
//	┌──────────────┬───────────┬─────────────────────────────────────┐
//	│ Field        │ Default   │ Description                         │
//	├──────────────┼───────────┼─────────────────────────────────────┤
//	│ host         │ "0.0.0.0" │ Listen address                      │
//	│ port         │ 8000      │ Listen port (0-65535)               │
//	│ web_path     │ ""        │ Override for the frontend web root  │
//	│ cors_enabled │ false     │ Allow cross-origin requests         │
//	└──────────────┴───────────┴─────────────────────────────────────┘
//
// The web section can be rewritten at runtime through PUT /api/config;
// Save persists the updated configuration back to the same file. A
// restart is required for the new settings to take effect.
package config
