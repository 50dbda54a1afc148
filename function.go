package app

import (
	"log"
	"os"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"github.com/kwatari/article-quadrant/internal/transport/server"
)

func init() {
	// The function name comes from the environment (required)
	functionTarget := os.Getenv("FUNCTION_TARGET")
	if functionTarget == "" {
		log.Fatal("❌ Error: FUNCTION_TARGET environment variable is not set")
	}

	log.Printf("✅ Registering function: %s", functionTarget)

	functions.HTTP(functionTarget, server.HandleRequest)
}
