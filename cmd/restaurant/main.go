package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"restaurant-gl/internal/config"
	"restaurant-gl/internal/platform"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configFile := flag.String("config", "", "Path to a TOML settings file (defaults apply when empty)")
	width := flag.Int("width", 0, "Window width override")
	height := flag.Int("height", 0, "Window height override")
	writeConfig := flag.String("write-config", "", "Write the effective settings as TOML to this path and exit")
	flag.Parse()

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override the config file
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *writeConfig != "" {
		data, err := config.Encode(cfg)
		if err == nil {
			err = os.WriteFile(*writeConfig, data, 0644)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
			os.Exit(1)
		}
		return
	}

	config.Apply(cfg)

	if err := platform.Init(); err != nil {
		log.Fatal(err)
	}
	defer platform.Terminate()

	a, err := newApp(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer a.dispose()

	a.run()
}
