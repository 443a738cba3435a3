package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/Kheene145/ML-coursework/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set datalens configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		fmt.Printf("outlier_method: %s\n", c.OutlierMethod)
		fmt.Printf("scaling_method: %s\n", c.ScalingMethod)
		fmt.Printf("binary_threshold: %d\n", c.BinaryThreshold)
		fmt.Printf("label_threshold: %d\n", c.LabelThreshold)
		fmt.Printf("bias_threshold: %.1f\n", c.BiasThreshold)
		fmt.Printf("imbalance_threshold: %.2f\n", c.ImbalanceThreshold)
		if c.TargetColumn != "" {
			fmt.Printf("target_column: %s\n", c.TargetColumn)
		}
		if c.PositiveLabel != "" {
			fmt.Printf("positive_label: %s\n", c.PositiveLabel)
		}
		if len(c.MissingMarkers) > 0 {
			fmt.Printf("missing_markers: %s\n", strings.Join(c.MissingMarkers, ", "))
		}
		fmt.Printf("top_n: %d\n", c.TopN)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		c := effectiveConfig()
		switch key {
		case "outlier_method":
			c.OutlierMethod = val
		case "scaling_method":
			c.ScalingMethod = val
		case "binary_threshold":
			i, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid int for binary_threshold: %v", val)
			}
			c.BinaryThreshold = i
		case "label_threshold":
			i, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid int for label_threshold: %v", val)
			}
			c.LabelThreshold = i
		case "bias_threshold":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("invalid float for bias_threshold: %v", val)
			}
			c.BiasThreshold = f
		case "imbalance_threshold":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("invalid float for imbalance_threshold: %v", val)
			}
			c.ImbalanceThreshold = f
		case "target_column":
			c.TargetColumn = val
		case "positive_label":
			c.PositiveLabel = val
		case "missing_markers":
			c.MissingMarkers = strings.Split(val, ",")
		case "top_n":
			i, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid int for top_n: %v", val)
			}
			c.TopN = i
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := c.Validate(); err != nil {
			return err
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		cfg = c
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
