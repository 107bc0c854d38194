// Package config loads the toast server configuration.
//
// Values come from, in increasing precedence, built-in defaults, an
// optional YAML/JSON/TOML file and GOBARBER_* environment variables. Nested
// keys map to variables by upper-casing and replacing dots with
// underscores, so toast.duration is GOBARBER_TOAST_DURATION.
//
// # Configuration File Structure
//
//	server:
//	  addr: ":3333"
//	  shutdown_timeout: 10s
//	toast:
//	  duration: 3s
//	  id_format: uuid
//	transition:
//	  enter: 300ms
//	  leave: 300ms
//	log:
//	  level: info
//	  format: text
//
// # Usage
//
//	cfg, err := config.Load("gobarber.yaml")
//	if err != nil {
//	    errors.PrintError(err)
//	    os.Exit(1)
//	}
//
//	fmt.Println("Listening on", cfg.Server.Addr)
package config
