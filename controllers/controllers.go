package controllers

import (
	"nexustap/config"
	"nexustap/services"
)

var (
	ledger *services.Ledger
	cfg    *config.Config
)

// Init wires the shared ledger service and configuration into the handlers
func Init(l *services.Ledger, c *config.Config) {
	ledger = l
	cfg = c
}
