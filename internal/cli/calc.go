package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/clockangle/internal/clock"
	"github.com/shinji-kodama/clockangle/internal/model"
	"github.com/shinji-kodama/clockangle/internal/runner"
)

// NewCalcCommand creates the "calc" cobra command.
func NewCalcCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "calc HOURS MINUTES [SECONDS]",
		Short: "Print the angle between the hands at a given time",
		Long: `Print the smallest angle in degrees between the hour and minute hands.

HOURS accepts 0-23 and is read on a 12-hour dial. MINUTES and SECONDS
accept 0-59; SECONDS defaults to 0.

Examples:
  clockangle calc 3 0
  clockangle calc 23 59 59 --json`,

		Args: cobra.RangeArgs(2, 3),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd, args)
		},
	}
}

// calcResultJSON is the --json output of the calc command.
type calcResultJSON struct {
	model.ClockTime
	Angle float64 `json:"angle"`
}

func runCalc(cmd *cobra.Command, args []string) error {
	names := []string{"hours", "minutes", "seconds"}
	values := make([]int, 3)
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError,
				fmt.Sprintf("invalid %s %q: must be an integer", names[i], arg), err)
		}
		values[i] = v
	}

	t := model.ClockTime{Hours: values[0], Minutes: values[1], Seconds: values[2]}
	angle, err := clock.CalculateTime(t)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "cannot compute angle", err)
	}
	newLogger(cmd).Debug("computed angle", "time", t.String(), "angle", angle)

	out := cmd.OutOrStdout()
	if IsJSONOutput() {
		data, err := json.MarshalIndent(calcResultJSON{ClockTime: t, Angle: angle}, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}
	fmt.Fprintln(out, runner.FormatAngle(angle))
	return nil
}
