package main

import (
	"os"

	"github.com/diillson/amplify-outputs/internal/adapter/driven/config"
	"github.com/diillson/amplify-outputs/internal/adapter/driving/cli"
	"github.com/diillson/amplify-outputs/pkg/console"
	"github.com/diillson/amplify-outputs/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	app.SetConfigRepository(config.NewConfigRepository())
	app.SetConsole(console.NewConsole())

	// Executa o aplicativo; o código de saída do ampx é repassado sem alteração
	os.Exit(cli.ExitCode(app.Execute(), os.Stderr))
}
