package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"math-solver-api/internal/config"
	"math-solver-api/internal/handlers"
	"math-solver-api/internal/models"
	"math-solver-api/pkg/lambda"
	"math-solver-api/pkg/server"
)

// newSolveCmd creates the 'solve' subcommand.
func newSolveCmd() *cobra.Command {
	var rawJSON bool

	cmd := &cobra.Command{
		Use:   "solve [problem...]",
		Short: "Solve a problem given as arguments or on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			problem := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read problem from stdin: %w", err)
				}
				problem = string(data)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			container, err := server.NewContainer(cfg)
			if err != nil {
				return err
			}
			defer container.Close()

			body, err := json.Marshal(models.SolveRequest{Problem: problem})
			if err != nil {
				return err
			}

			var solve lambda.HandlerFunc = handlers.NewSolveHandler(container.SolverService).HandleSolve
			resp := solve(cmd.Context(), &lambda.Request{
				Method:    http.MethodPost,
				Path:      "/solve",
				Body:      body,
				RequestID: uuid.New().String(),
			})

			return printResponse(cmd, resp, rawJSON)
		},
	}
	cmd.Flags().BoolVar(&rawJSON, "json", false, "print the raw JSON response")

	return cmd
}

// printResponse writes the solution to stdout. A non-200 response becomes
// the command's error.
func printResponse(cmd *cobra.Command, resp *lambda.Response, rawJSON bool) error {
	if rawJSON {
		fmt.Fprintln(cmd.OutOrStdout(), string(resp.Body))
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("request failed with status %d", resp.StatusCode)
		}
		return nil
	}

	if resp.StatusCode != http.StatusOK {
		var errResp models.ErrorResponse
		if err := json.Unmarshal(resp.Body, &errResp); err != nil || errResp.Error == "" {
			return fmt.Errorf("request failed with status %d", resp.StatusCode)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", errResp.Error)
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	var solution models.SolveResponse
	if err := json.Unmarshal(resp.Body, &solution); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), solution.Solution)
	fmt.Fprintf(cmd.ErrOrStderr(), "-- %s\n", solution.Model)
	return nil
}
