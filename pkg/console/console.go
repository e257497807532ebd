package console

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/diillson/amplify-outputs/internal/shared/types"
)

// selectMaxHeight is the number of options shown at once in a prompt.
const selectMaxHeight = 10

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start(message)
	return &statusHandle{spinner: spinner}
}

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		_ = h.spinner.Stop()
	}
}

// Select shows an interactive list and returns the index of the chosen label.
// Ctrl+C is handled by pterm and terminates the process.
func (c *Console) Select(message string, labels []string) (int, error) {
	if len(labels) == 0 {
		return -1, fmt.Errorf("%s: %w", message, types.ErrNoChoices)
	}

	options := uniqueLabels(labels)
	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithMaxHeight(selectMaxHeight).
		Show(message)
	if err != nil {
		return -1, fmt.Errorf("%s: %w", message, err)
	}

	return indexOf(options, choice), nil
}

// uniqueLabels suffixes repeated labels with the next free occurrence number so every
// option the prompt returns maps back to exactly one index. Labels that already look
// suffixed are reserved up front and never reused.
func uniqueLabels(labels []string) []string {
	used := make(map[string]bool, len(labels))
	for _, label := range labels {
		used[label] = true
	}

	kept := make(map[string]bool, len(labels))
	next := make(map[string]int, len(labels))
	options := make([]string, len(labels))
	for i, label := range labels {
		if !kept[label] {
			kept[label] = true
			options[i] = label
			continue
		}

		n := next[label]
		if n < 2 {
			n = 2
		}
		candidate := fmt.Sprintf("%s (%d)", label, n)
		for used[candidate] {
			n++
			candidate = fmt.Sprintf("%s (%d)", label, n)
		}
		next[label] = n + 1
		used[candidate] = true
		options[i] = candidate
	}
	return options
}

func indexOf(options []string, choice string) int {
	for i, option := range options {
		if option == choice {
			return i
		}
	}
	return -1
}
