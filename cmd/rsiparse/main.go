package main

import (
	"context"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Aashish23092/rsi-career-extraction/client"
	"github.com/Aashish23092/rsi-career-extraction/config"
	"github.com/Aashish23092/rsi-career-extraction/dto"
	"github.com/Aashish23092/rsi-career-extraction/service"
)

var (
	password string
	rawText  bool
	yearMap  bool
	pretty   bool
)

var rootCmd = &cobra.Command{
	Use:   "rsiparse [file]",
	Short: "Extract the career record from a pension statement",
	Long: `rsiparse reads a relevé de situation individuelle (PDF, image or text)
and prints the extracted quarters, points and employment rows as JSON.
With --text the argument is read as already extracted text; "-" reads stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&password, "password", "p", "", "PDF user password")
	rootCmd.Flags().BoolVar(&rawText, "text", false, "treat the input as extracted text")
	rootCmd.Flags().BoolVar(&yearMap, "year-map", true, "include the per-year income map")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	// stdout carries the JSON result
	config.SetupLoggerTo(cfg, cmd.ErrOrStderr())

	data, err := readInput(args[0])
	if err != nil {
		return err
	}

	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath, cfg.OCRLanguage)
	defer tesseractClient.Close()
	rsiService := service.NewRSIService(tesseractClient, service.NewPDFProcessor(), cfg.MinTextLength)

	var resp *dto.RSIParseResponse
	if rawText || args[0] == "-" {
		resp, err = rsiService.ParseText(string(data))
	} else {
		resp, err = rsiService.ParseDocument(context.Background(), args[0], data, password)
	}
	if err != nil {
		log.Error().Err(err).Str("input", args[0]).Msg("parse failed")
		return err
	}
	if !yearMap {
		resp.YearMap = nil
	}

	var out []byte
	if pretty {
		out, err = json.MarshalIndent(resp, "", "  ")
	} else {
		out, err = json.Marshal(resp)
	}
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
