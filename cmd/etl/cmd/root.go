package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kwizera-io/go-momo-etl/cmd/setup"
	"github.com/kwizera-io/go-momo-etl/internal/common/log"
	"github.com/kwizera-io/go-momo-etl/internal/services"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "etl",
	Short: "Batch pipeline that loads mobile money SMS backups into the transaction store",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(categoriesCmd)

	runCmd.Flags().StringP(runCmdFile, "f", "", "path to the SMS backup XML document")
	runCmd.MarkFlagRequired(runCmdFile)
}

var (
	runCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run one batch over an SMS backup document",
		Long:    ``,
		Example: "etl run -f modified_sms_v2.xml",
		Run:     runBatch,
	}
	runCmdFile = "file"

	seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Seed the closed transaction category set",
		Long:  ``,
		Run:   seedCategories,
	}

	categoriesCmd = &cobra.Command{
		Use:   "categories",
		Short: "List the transaction categories",
		Long:  ``,
		Run:   listCategories,
	}
)

func runBatch(ccmd *cobra.Command, args []string) {
	var (
		ctx = context.Background()
	)

	s, err := setup.Init()
	if err != nil {
		log.Fatalf(ctx, "failed to setup app: %v", err)
	}
	defer s.Close()

	filePath, _ := ccmd.Flags().GetString(runCmdFile)
	f, err := os.Open(filePath)
	if err != nil {
		log.Fatalf(ctx, "failed to open source document: %v", err)
	}
	defer f.Close()

	result, err := s.Service.Pipeline.Run(ctx, f)
	if err != nil {
		log.Fatalf(ctx, "batch aborted: %v", err)
	}

	fmt.Printf("batch %s: seen=%d loaded=%d rejected=%d duplicates=%d\n",
		result.BatchID, result.TotalSeen, result.Loaded, result.Rejected, result.Duplicates)
	for _, ref := range result.DeadLetterRefs {
		fmt.Printf("dead letter entry: %d\n", ref)
	}
}

func seedCategories(ccmd *cobra.Command, args []string) {
	var (
		ctx = context.Background()
	)

	s, err := setup.Init()
	if err != nil {
		log.Fatalf(ctx, "failed to setup app: %v", err)
	}
	defer s.Close()

	if err := s.Service.Seeder.SeedCategories(ctx, services.DefaultCategories()); err != nil {
		log.Fatalf(ctx, "failed to seed categories: %v", err)
	}
}

func listCategories(ccmd *cobra.Command, args []string) {
	var (
		ctx = context.Background()
	)

	s, err := setup.Init()
	if err != nil {
		log.Fatalf(ctx, "failed to setup app: %v", err)
	}
	defer s.Close()

	categories, err := s.Service.Category.GetAll(ctx)
	if err != nil {
		log.Fatalf(ctx, "failed to list categories: %v", err)
	}

	for _, c := range categories {
		fmt.Printf("id=%d transactionType=%s paymentType=%s\n", c.ID, c.TransactionType, c.PaymentType)
	}
}
