package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(w io.Writer, versionStr string) {
	banner := `
   __ _  _ __ ___   _ __  __  __
  / _' || '_ ' _ \ | '_ \ \ \/ /
 | (_| || | | | | || |_) | >  <
  \__,_||_| |_| |_|| .__/ /_/\_\
                   |_|   outputs`

	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Fprintln(w, red(banner))
	fmt.Fprintln(w, blue(fmt.Sprintf("Amplify Outputs CLI (v%s)", versionStr)))
}
