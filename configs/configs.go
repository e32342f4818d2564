package configs

import (
	"bytes"
	_ "embed"
	"os"

	"workon/pkg/log"
	"workon/pkg/msg"
	"workon/pkg/resource"
)

//go:embed application.yml
var applicationProperties []byte

//go:embed messages.yml
var messageBundle []byte

// init loads the embedded properties and messages, then any override files
// named by PROPERTIES_FILE_PATH and MESSAGES_FILE_PATH.
func init() {
	if err := resource.Load(bytes.NewReader(applicationProperties)); err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}
	if path, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok {
		if err := resource.Init(path); err != nil {
			log.Fatalf("Fail to read properties: %v", err)
		}
	}

	if err := msg.Load(bytes.NewReader(messageBundle)); err != nil {
		log.Fatalf("Fail to read messages: %v", err)
	}
	if path, ok := os.LookupEnv("MESSAGES_FILE_PATH"); ok {
		if err := msg.Init(path); err != nil {
			log.Fatalf("Fail to read messages: %v", err)
		}
	}

	if err := log.SetLevel(resource.GetString("app.log.level")); err != nil {
		log.Warn(msg.GetMessage("app.error.log-level", resource.GetString("app.log.level")))
	}

	Env = loadEnv()
}
