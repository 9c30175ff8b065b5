// Tails the innovation event stream. Useful when debugging whether
// idea and catalog events actually reach NATS.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"innovation-hub-be/pkg/events"
	pktNats "innovation-hub-be/pkg/nats"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = "nats://localhost:4222"
	}

	sub, err := pktNats.NewSubscriber(natsURL)
	if err != nil {
		log.Fatalf("Error: Failed to connect to NATS: %v", err)
	}
	defer sub.Close()

	err = sub.Subscribe("innovation.>", "event-tail", func(ctx context.Context, event events.Event) error {
		data, _ := json.MarshalIndent(event.Payload(), "", "  ")
		color.Cyan("[%s] %s", event.Timestamp().Format("15:04:05"), event.EventType())
		color.White("%s", data)
		return nil
	})
	if err != nil {
		log.Fatalf("Error: Failed to subscribe: %v", err)
	}

	color.Green("Tailing innovation events, Ctrl+C to stop...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
}
