package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/veddel/gopong/server"
	"github.com/veddel/gopong/troupe"
	"github.com/veddel/gopong/utils"
	"golang.org/x/net/websocket"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (defaults apply when empty)")
	addr := flag.String("addr", "", "listen address override")
	flag.Parse()

	cfg := utils.DefaultConfig()
	if *configPath != "" {
		loaded, err := utils.LoadConfig(*configPath)
		if err != nil {
			fmt.Println("Error loading config:", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *addr != "" {
		cfg.ListenAddr = *addr
	}

	engine := troupe.NewEngine()
	matchPID := engine.Spawn(troupe.NewProps(server.NewMatchActorProducer(engine, cfg)))
	if matchPID == nil {
		fmt.Println("Failed to spawn match actor")
		os.Exit(1)
	}

	srv := server.New(engine, cfg, matchPID)

	http.Handle("/subscribe", websocket.Handler(srv.HandleSubscribe()))
	http.HandleFunc("/state", srv.HandleState())
	http.HandleFunc("/frame", srv.HandleFrame())

	fmt.Println("gopong listening on", cfg.ListenAddr)
	panic(http.ListenAndServe(cfg.ListenAddr, nil))
}
