package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/llp/dispatch"
)

func runDispatch(_ *cobra.Command, _ []string) error {
	opts := []dispatch.Option{
		dispatch.WithMaxWorkers(viper.GetInt("max_workers")),
		dispatch.WithSource(viper.GetInt("source")),
	}

	result, err := dispatch.Run(algorithm, inputPath, opts...)
	if err != nil {
		return fmt.Errorf("dispatch %s over %s: %w", algorithm, inputPath, err)
	}

	if result.NoResult {
		fmt.Printf("no result: %s\n", result.Reason)
		return nil
	}

	fmt.Println(formatIntVector(result.Values))
	return nil
}

func formatIntVector(values []int64) string {
	out := "["
	for i, v := range values {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%d", v)
	}
	return out + "]"
}
