package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-personnummer"
	"github.com/goliatone/go-personnummer/core"
)

var (
	validateStrict    bool
	validateForgiving bool
	validateFormat    string
	validateJSON      bool

	validateCmd = &cobra.Command{
		Use:   "validate <number> [number...]",
		Short: "Validate one or more identity numbers",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runValidate,
	}
)

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "reject separator/age contradictions and future dates")
	validateCmd.Flags().BoolVar(&validateForgiving, "forgiving", false, "correct the separator instead of trusting the input")
	validateCmd.Flags().StringVar(&validateFormat, "format", core.DefaultNormalizeFormat, "normalization template (YYYY, YY, MM, DD, NNNN, - or +)")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "emit one JSON document per input")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg := personnummer.DefaultConfig()
	cfg.Strict = validateStrict
	cfg.Forgiving = validateForgiving
	cfg.NormalizeFormat = validateFormat

	svc, err := personnummer.NewService(cfg)
	if err != nil {
		return err
	}

	cmd.SilenceUsage = true
	failures := 0
	for _, arg := range args {
		result, _ := svc.Parse(cmd.Context(), arg)
		if !result.Valid {
			failures++
		}
		if err := printResult(cmd, result); err != nil {
			return err
		}
	}
	if failures > 0 {
		cmd.SilenceErrors = true
		return fmt.Errorf("%d of %d inputs failed validation", failures, len(args))
	}
	return nil
}

func printResult(cmd *cobra.Command, result personnummer.Result) error {
	if validateJSON {
		encoded, err := json.Marshal(result)
		if err != nil {
			return err
		}
		cmd.Println(string(encoded))
		return nil
	}

	if !result.Valid {
		cmd.Printf("%s\tinvalid\t%s\n", result.Input, result.Reason)
		return nil
	}

	line := fmt.Sprintf("%s\tvalid\t%s\t%s\tage=%d\t%s",
		result.Input, result.Normalized, result.Type, result.Age, result.Gender)
	if result.Birthplace != "" {
		line += "\t" + result.Birthplace
	}
	cmd.Println(line)
	return nil
}
