package commands

import (
	"fmt"
	"os"

	"emostore/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("emostore error", "err", err.Error())
	os.Exit(1)
}

func HandleHelp(_ []string) {
	fmt.Println(`emostore - emotion media storage and export service

usage:
  emostore run <config.yml>   start the service
  emostore version            print the version
  emostore help               show this message`) //nolint
}
