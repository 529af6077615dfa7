// Package config provides configuration parsing for vmount.
//
// The configuration lives in vmount.json (or vmount.yaml) at the project
// root and controls diagnostics, hydration defaults, metrics, tracing and
// logging for the runtime built by the CLI.
//
// # Configuration File Structure
//
//	{
//	  "name": "my-app",
//	  "dev": true,
//	  "hydration": {
//	    "recover": true,
//	    "intro": false
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "vmount"
//	  },
//	  "tracing": {
//	    "enabled": false,
//	    "tracerName": "vmount"
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "text"
//	  }
//	}
//
// The YAML form uses the same keys.
package config
