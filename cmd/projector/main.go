package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/visibility-audit-api/internal/cli"
	"github.com/vfg2006/visibility-audit-api/internal/config"
)

func main() {
	// só avisos e erros no stderr; a saída do comando é JSON no stdout
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := cli.NewRootCmd(cfg).Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
