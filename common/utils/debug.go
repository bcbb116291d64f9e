package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type Context map[string]interface{}

type Message struct {
	Time    string  `json:"time"`
	Service string  `json:"service"`
	Message string  `json:"message"`
	Context Context `json:"context"`
}

// LogFn receives every Debug call; swap it to redirect or silence logs.
var LogFn = jsonLog

func Debug(service string, message string) {
	LogFn(service, message)
}

func Debugf(service string, format string, args ...interface{}) {
	LogFn(service, fmt.Sprintf(format, args...))
}

func jsonLog(service string, message string) {
	context := make(Context)

	if hostname, err := os.Hostname(); err == nil {
		context["hostname"] = hostname
	}

	messageStruct := Message{
		Time:    time.Now().Format(time.RFC3339),
		Service: service,
		Message: message,
		Context: context,
	}

	data, _ := json.Marshal(messageStruct)

	fmt.Println(string(data))
}

// SilentLog drops every message.
func SilentLog(service string, message string) {}

func PlainLog(service string, message string) {
	fmt.Println("[" + service + "] " + message)
}
