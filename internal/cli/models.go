package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/planforge/pkg/config"
)

// modelsCommand creates the models command: an interactive picker for the
// text-generation model.
func (c *CLI) modelsCommand() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "models",
		Short: "Pick the text-generation model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for _, choice := range modelChoices {
					printKeyValue(choice.Name, choice.Note)
				}
				return nil
			}

			program := tea.NewProgram(NewModelListModel(modelChoices))
			final, err := program.Run()
			if err != nil {
				return fmt.Errorf("model picker: %w", err)
			}

			m, ok := final.(ModelListModel)
			if !ok || m.Selected == nil {
				printInfo("No model selected")
				return nil
			}

			printSuccess("Selected %s", m.Selected.Name)
			printNextStep("Use it for one run", appName+" generate -m "+m.Selected.Name+" ...")
			printNextStep("Make it the default", "export "+config.EnvModel+"="+m.Selected.Name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "print models without the interactive picker")

	return cmd
}
