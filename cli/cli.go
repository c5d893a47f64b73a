// Package cli implements the onsapi command line tool, which resolves ONS
// dataset names to download links from a terminal.
package cli

import (
	"fmt"
	"io"
	"sort"
	"time"

	"cloud.google.com/go/civil"
	"github.com/ONSdigital/dp-onsapi/config"
	"github.com/ONSdigital/dp-onsapi/handlers"
	"github.com/ONSdigital/dp-onsapi/mapper"
	"github.com/ONSdigital/dp-onsapi/onsapi"
	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// ClientFactory creates the client commands run against
type ClientFactory func(cfg onsapi.Config) handlers.ONSClient

// NewClient is the ClientFactory used outside tests
func NewClient(cfg onsapi.Config) handlers.ONSClient {
	return onsapi.New(cfg, nil)
}

type options struct {
	clientConfig onsapi.Config
	contextName  string
	since        string
}

func (o *options) sinceDate() (time.Time, error) {
	if o.since == "" {
		return time.Time{}, nil
	}
	d, err := civil.ParseDate(o.since)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid --since %q, expected YYYY-MM-DD", o.since)
	}
	return d.In(time.UTC), nil
}

// NewRootCommand builds the onsapi command tree. Flag defaults are read from
// the same environment variables as the service.
func NewRootCommand(newClient ClientFactory) (*cobra.Command, error) {
	cfg, err := config.Get()
	if err != nil {
		return nil, errors.Wrap(err, "error getting configuration")
	}

	opts := &options{clientConfig: cfg.ClientConfig()}
	var client handlers.ONSClient

	root := &cobra.Command{
		Use:          "onsapi",
		Short:        "Resolve ONS dataset names to download links",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.clientConfig.APIKey == "" {
				return errors.New("an api key is required, set --api-key or ONS_API_KEY")
			}
			client = newClient(opts.clientConfig)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.clientConfig.APIKey, "api-key", opts.clientConfig.APIKey, "ONS API key")
	flags.StringVar(&opts.clientConfig.Root, "api-url", opts.clientConfig.Root, "ONS API base URL")
	flags.StringVar(&opts.clientConfig.Language, "lang", opts.clientConfig.Language, "language of names, descriptions and links")
	flags.StringVar(&opts.clientConfig.DownloadType, "download-type", opts.clientConfig.DownloadType, "document type of download links, e.g. CSV or XLS")

	root.AddCommand(&cobra.Command{
		Use:   "contexts",
		Short: "List the statistical contexts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			contexts, err := client.Contexts(cmd.Context())
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(), contexts)
		},
	})

	datasetsCmd := &cobra.Command{
		Use:   "datasets",
		Short: "List the names of the datasets in a context, or in all contexts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			since, err := opts.sinceDate()
			if err != nil {
				return err
			}
			names, err := client.DatasetNames(cmd.Context(), opts.contextName, since)
			if err != nil {
				return err
			}
			sort.Strings(names)
			return printLines(cmd.OutOrStdout(), names)
		},
	}

	detailsCmd := &cobra.Command{
		Use:   "details NAME",
		Short: "Show the details of every dataset named NAME as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			since, err := opts.sinceDate()
			if err != nil {
				return err
			}
			metadata, err := client.DatasetDetails(cmd.Context(), args[0], opts.contextName, since)
			if err != nil {
				return err
			}
			resp, err := mapper.MapDatasets(metadata)
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(resp, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		},
	}

	linksCmd := &cobra.Command{
		Use:   "links NAME",
		Short: "List the download links of every dataset named NAME",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			since, err := opts.sinceDate()
			if err != nil {
				return err
			}
			links, err := client.DownloadLinks(cmd.Context(), args[0], opts.contextName, since)
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(), links)
		},
	}

	for _, cmd := range []*cobra.Command{datasetsCmd, detailsCmd, linksCmd} {
		cmd.Flags().StringVar(&opts.contextName, "context", "", "only search this context")
		cmd.Flags().StringVar(&opts.since, "since", "", "only datasets published since this date (YYYY-MM-DD)")
		root.AddCommand(cmd)
	}

	return root, nil
}

func printLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
