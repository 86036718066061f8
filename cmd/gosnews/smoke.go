package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gosnews/gosnews/internal/lib/i18n"
	"github.com/gosnews/gosnews/internal/lib/utils"
	"github.com/spf13/cobra"
)

// smokePaths are requested once per language.
var smokePaths = []string{
	"/api/v1/home",
	"/api/v1/news?page_size=3",
	"/api/v1/categories",
	"/api/v1/guides",
}

func newSmokeCommand() *cobra.Command {
	var (
		baseURL string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Request the main endpoints of a running server",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := resty.New().
				SetBaseURL(strings.TrimRight(baseURL, "/")).
				SetTimeout(10 * time.Second)

			out := cmd.OutOrStdout()
			failed := 0

			check := func(path string) {
				resp, err := client.R().SetContext(cmd.Context()).Get(path)
				if err != nil {
					failed++
					fmt.Fprintf(out, "FAIL %s: %v\n", path, err)
					return
				}
				if resp.IsError() {
					failed++
					fmt.Fprintf(out, "FAIL %s: %d\n", path, resp.StatusCode())
				} else {
					fmt.Fprintf(out, "ok   %s (%s)\n", path, resp.Time())
				}
				if verbose {
					body, _ := utils.PrettyJSON(resp.Body())
					fmt.Fprintln(out, string(body))
				}
			}

			check("/status")
			for _, lang := range i18n.Supported() {
				for _, path := range smokePaths {
					sep := "?"
					if strings.Contains(path, "?") {
						sep = "&"
					}
					check(path + sep + "lang=" + lang)
				}
			}

			summary := map[string]int{"failed": failed}
			if err := utils.PrintJSON(out, summary); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d smoke checks failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "http://localhost:8080", "address of the running server")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print response bodies")

	return cmd
}
