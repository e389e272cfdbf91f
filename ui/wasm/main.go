//go:build js && wasm

package main

import (
	"fmt"

	"evilboard/src/game"
	"evilboard/src/logx"
	"evilboard/src/rules"
	"evilboard/ui/gui"
	"evilboard/ui/gui/gbase/gconf"
)

func GetLogger(level string) *logx.Logx {
	return logx.NewLogx(
		logx.GetLoggerLevelByString(level),
		false,
		true,
		nil,
	)
}

func RunGUI() error {
	// the config lives in localStorage under this key
	conf, err := gconf.NewGUIConfig(gconf.DefaultFile)
	if err != nil {
		return fmt.Errorf("error load config: %v", err)
	}
	logger := GetLogger(conf.LogLevel)

	pos, err := rules.FromFEN(conf.FEN)
	if err != nil {
		logger.Warnf("bad FEN in config, using start position: %v", err)
		pos = rules.Start()
	}
	g, err := gui.NewGUI(conf, game.NewHistory(game.New(pos)), logger)
	if err != nil {
		logger.Errorf("error init GUI: %v", err)
		return fmt.Errorf("error init GUI: %v", err)
	}
	return g.Run()
}

func main() {
	if err := RunGUI(); err != nil {
		fmt.Println(err)
	}
}
