package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/option-inquiry/src/cmd/inquiry/run"
	"github.com/jiaming2012/option-inquiry/src/eventmodels"
	"github.com/jiaming2012/option-inquiry/src/inquiry"
	"github.com/jiaming2012/option-inquiry/src/logger"
	"github.com/jiaming2012/option-inquiry/src/sheets"
	"github.com/jiaming2012/option-inquiry/src/utils"
)

type RunArgs struct {
	Workbooks     []string
	SpreadsheetID string
	ConfigPath    string
	Request       eventmodels.QuoteRequest
	AllTerms      bool
}

type RunResult struct {
	Quotes []*eventmodels.OptionQuoteResult
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/inquiry/main.go --workbook quotes.xlsx --stock 600519 --type call --term 1M --structure atm",
	Short: "Synthesize an option quote from quote workbooks",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		logLevel, err := cmd.Flags().GetString("log-level")
		if err != nil {
			log.Fatalf("error getting log-level: %v", err)
		}

		if err := logger.Setup(logLevel, goEnv); err != nil {
			log.Fatalf("%v", err)
		}

		projectsDir := utils.GetEnvOrDefault("PROJECTS_DIR", ".")
		if err := utils.InitEnvironmentVariables(projectsDir, goEnv); err != nil {
			log.Fatalf("error loading environment variables: %v", err)
		}

		runArgs, err := parseRunArgs(cmd)
		if err != nil {
			log.Fatalf("%v", err)
		}

		outDir, err := cmd.Flags().GetString("outDir")
		if err != nil {
			log.Fatalf("error getting outDir: %v", err)
		}

		asJSON, err := cmd.Flags().GetBool("json")
		if err != nil {
			log.Fatalf("error getting json: %v", err)
		}

		result, err := Run(cmd.Context(), runArgs)
		if err != nil {
			log.Errorf("Error: %v", err)
			os.Exit(1)
		}

		switch {
		case outDir != "":
			csvPath, err := run.ExportToCsv(outDir, result.Quotes, "inquiry", time.Now())
			if err != nil {
				log.Errorf("Failed to export to CSV: %v", err)
				os.Exit(1)
			}

			fmt.Println("CSV file written to: ", csvPath)
		case asJSON:
			quotesJSON, err := json.MarshalIndent(result.Quotes, "", "  ")
			if err != nil {
				log.Errorf("Failed to marshal quotes: %v", err)
				os.Exit(1)
			}

			fmt.Println(string(quotesJSON))
		default:
			for _, q := range result.Quotes {
				fmt.Println(q.String())
			}
		}
	},
}

func parseRunArgs(cmd *cobra.Command) (RunArgs, error) {
	var args RunArgs
	var err error

	if args.Workbooks, err = cmd.Flags().GetStringSlice("workbook"); err != nil {
		return args, fmt.Errorf("error getting workbook: %w", err)
	}

	if args.SpreadsheetID, err = cmd.Flags().GetString("spreadsheet-id"); err != nil {
		return args, fmt.Errorf("error getting spreadsheet-id: %w", err)
	}

	if args.ConfigPath, err = cmd.Flags().GetString("config"); err != nil {
		return args, fmt.Errorf("error getting config: %w", err)
	}

	if args.AllTerms, err = cmd.Flags().GetBool("all-terms"); err != nil {
		return args, fmt.Errorf("error getting all-terms: %w", err)
	}

	flags := map[string]*string{
		"stock":   &args.Request.UnderlyingCode,
		"product": (*string)(&args.Request.ProductType),
		"expiry":  &args.Request.CustomExpiry,
	}

	for name, dst := range flags {
		if *dst, err = cmd.Flags().GetString(name); err != nil {
			return args, fmt.Errorf("error getting %s: %w", name, err)
		}
	}

	optionType, err := cmd.Flags().GetString("type")
	if err != nil {
		return args, fmt.Errorf("error getting type: %w", err)
	}

	if args.Request.Side, err = eventmodels.ParseOptionType(optionType); err != nil {
		return args, fmt.Errorf("invalid --type: %w", err)
	}

	term, err := cmd.Flags().GetString("term")
	if err != nil {
		return args, fmt.Errorf("error getting term: %w", err)
	}

	if args.Request.Tenor, err = eventmodels.ParseTenor(term); err != nil {
		return args, fmt.Errorf("invalid --term: %w", err)
	}

	structure, err := cmd.Flags().GetString("structure")
	if err != nil {
		return args, fmt.Errorf("error getting structure: %w", err)
	}

	if args.Request.Structure, err = eventmodels.ParseStructure(structure); err != nil {
		return args, fmt.Errorf("invalid --structure: %w", err)
	}

	if cmd.Flags().Changed("strike") {
		strike, err := cmd.Flags().GetFloat64("strike")
		if err != nil {
			return args, fmt.Errorf("error getting strike: %w", err)
		}

		args.Request.CustomStrike = &strike
	}

	return args, nil
}

func Run(ctx context.Context, args RunArgs) (RunResult, error) {
	cfg, err := inquiry.LoadConfig(args.ConfigPath)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: %w", err)
	}

	if len(args.Workbooks) == 0 && args.SpreadsheetID == "" {
		log.Warn("no workbook or spreadsheet given, every underlying will be synthetic")
	}

	tables, err := sheets.NewLoader(args.Workbooks, args.SpreadsheetID)(ctx)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: %w", err)
	}

	engine := inquiry.NewEngine(cfg)

	reqs := []eventmodels.QuoteRequest{args.Request}
	if args.AllTerms {
		reqs = reqs[:0]
		for _, tenor := range eventmodels.Tenors {
			req := args.Request
			req.Tenor = tenor
			reqs = append(reqs, req)
		}
	}

	results, errs := engine.SynthesizeBatch(tables, reqs)
	for i, err := range errs {
		if err != nil {
			return RunResult{}, fmt.Errorf("Run: %s: %w", reqs[i].Tenor, err)
		}
	}

	return RunResult{Quotes: results}, nil
}

func registerFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")
	cmd.PersistentFlags().String("log-level", "warn", "The logrus level.")
	cmd.PersistentFlags().StringSlice("workbook", []string{}, "Quote workbook files (.xlsx or .csv).")
	cmd.PersistentFlags().String("spreadsheet-id", "", "Google spreadsheet to read quote sheets from.")
	cmd.PersistentFlags().String("config", "", "Engine config yaml file.")
	cmd.PersistentFlags().String("stock", "", "The underlying security code.")
	cmd.PersistentFlags().String("type", "call", "The option type: call or put.")
	cmd.PersistentFlags().String("term", "1M", "The tenor: 2W, 1M, 2M, 3M, 6M or 12M.")
	cmd.PersistentFlags().String("structure", "atm", "The structure: atm, itm, otm or custom.")
	cmd.PersistentFlags().String("product", "", "The product type: vanilla or snowball.")
	cmd.PersistentFlags().Float64("strike", 0, "The strike price of a custom structure.")
	cmd.PersistentFlags().String("expiry", "", "The expiry date (YYYY-MM-DD) of a custom structure.")
	cmd.PersistentFlags().Bool("all-terms", false, "Quote every tenor.")
	cmd.PersistentFlags().Bool("json", false, "Print the quotes as json.")
	cmd.PersistentFlags().String("outDir", "", "The directory to write a csv of the quotes to.")
}

func main() {
	registerFlags(runCmd)

	if err := runCmd.Execute(); err != nil {
		log.Fatalf("error executing command: %v", err)
	}
}
