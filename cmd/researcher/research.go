package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	researcher "github.com/Protocol-Lattice/go-researcher"
	"github.com/Protocol-Lattice/go-researcher/src/config"
	"github.com/Protocol-Lattice/go-researcher/src/engine"
	"github.com/Protocol-Lattice/go-researcher/src/models"
	"github.com/Protocol-Lattice/go-researcher/src/search"
)

var reportTypeFlag string

var webCmd = &cobra.Command{
	Use:   "web \"query\"",
	Short: "Research a query using the internet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResearch(cmd, args[0], researcher.SourceWeb)
	},
}

var localCmd = &cobra.Command{
	Use:   "local \"query\"",
	Short: "Research a query using the local document directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResearch(cmd, args[0], researcher.SourceLocal)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{webCmd, localCmd} {
		cmd.Flags().StringVar(&reportTypeFlag, "type", string(researcher.ReportResearch),
			"report type: research_report, subtopic_report, custom_report, outline_report or resource_report")
	}
}

func runResearch(cmd *cobra.Command, query string, source researcher.ReportSource) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	reportType, err := researcher.ParseReportType(reportTypeFlag)
	if err != nil {
		return err
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	eng, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}

	var tool researcher.Tool
	switch source {
	case researcher.SourceWeb:
		tool, err = researcher.NewWebResearcher(eng, reportType)
	case researcher.SourceLocal:
		tool, err = researcher.NewLocalResearcher(eng, reportType)
	}
	if err != nil {
		return err
	}

	resp, err := tool.Invoke(ctx, researcher.ToolRequest{
		Arguments: map[string]any{"query": query},
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), resp.Content)
	return nil
}

func buildEngine(ctx context.Context, cfg *config.Config) (engine.Engine, error) {
	if cfg.Engine == "remote" {
		return engine.NewRemote(cfg.RemoteURL, cfg.RemoteAPIKey), nil
	}

	model, err := models.NewProvider(ctx, cfg.Provider, cfg.Model)
	if err != nil {
		return nil, err
	}

	var backend search.Backend
	switch cfg.Retriever {
	case "tavily":
		if cfg.RetrieverAPIKey == "" {
			// Keyless fallback when no Tavily key is configured.
			backend = search.NewDuckDuckGoBackend()
		} else {
			backend = search.NewTavilyBackend(cfg.RetrieverAPIKey)
		}
	case "duckduckgo":
		backend = search.NewDuckDuckGoBackend()
	case "", "none":
		// Local-only research needs no retriever.
	default:
		return nil, fmt.Errorf("unknown retriever %q", cfg.Retriever)
	}

	eng := engine.NewEmbedded(model, backend, cfg.DocPath)
	eng.MaxResults = cfg.MaxResults
	return eng, nil
}
