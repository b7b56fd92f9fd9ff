// Copyright 2026 The Akton ARN Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command arn inspects and mints Akton Resource Names from the command line.
// It is a thin wrapper over the library; all parsing, validation, and
// generation happens through the codec's public operations.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/akton/arn/pkg/arn"
	"github.com/akton/arn/pkg/resid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v3"
)

var rootCmd = &cobra.Command{
	Use:   "arn",
	Short: "Inspect and mint Akton Resource Names",
}

var (
	partition = flag.String("partition", "", "the deployment realm segment")
	service   = flag.String("service", "", "the owning subsystem segment")
	category  = flag.String("category", "", "the grouping segment (may be empty)")
	tag       = flag.String("tag", string(resid.User), "the identifier type tag")
	output    = flag.String("output", "text", "output format. Options: text, json, yaml")
)

var registry = resid.DefaultRegistry()

// report is the printable breakdown of a parsed ARN.
type report struct {
	Arn       string `json:"arn" yaml:"arn"`
	Partition string `json:"partition" yaml:"partition"`
	Service   string `json:"service" yaml:"service"`
	Category  string `json:"category,omitempty" yaml:"category,omitempty"`
	Tag       string `json:"tag" yaml:"tag"`
	Kind      string `json:"kind,omitempty" yaml:"kind,omitempty"`
	UUID      string `json:"uuid" yaml:"uuid"`
}

func reportOf(a arn.Arn) report {
	id := a.ResourceID()
	kind, _ := registry.Describe(id.Tag())
	return report{
		Arn:       a.String(),
		Partition: a.Partition(),
		Service:   a.Service(),
		Category:  a.Category(),
		Tag:       string(id.Tag()),
		Kind:      kind,
		UUID:      id.UUID().String(),
	}
}

func emit(r report) error {
	switch *output {
	case "text":
		fmt.Printf("partition: %s\n", r.Partition)
		fmt.Printf("service:   %s\n", r.Service)
		fmt.Printf("category:  %s\n", r.Category)
		if r.Kind != "" {
			fmt.Printf("tag:       %s (%s)\n", r.Tag, r.Kind)
		} else {
			fmt.Printf("tag:       %s\n", r.Tag)
		}
		fmt.Printf("uuid:      %s\n", r.UUID)
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		b, err := yaml.Marshal(r)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(b)
		return err
	default:
		return errors.Errorf("unknown output format %q", *output)
	}
}

var parseCmd = &cobra.Command{
	Use:   "parse <arn>",
	Short: "Parse an ARN and print its segments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := arn.Parse(args[0])
		if err != nil {
			return errors.Wrap(err, "parsing ARN")
		}
		return emit(reportOf(a))
	},
}

var newCmd = &cobra.Command{
	Use:   "new --partition <p> --service <s> [--category <c>] [--tag <t>]",
	Short: "Mint an ARN with a freshly generated identifier",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := arn.New(*partition, *service, *category, resid.Tag(*tag))
		if err != nil {
			return errors.Wrap(err, "minting ARN")
		}
		fmt.Println(a.String())
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [<arn>...]",
	Short: "Validate ARNs from arguments or stdin, one per line",
	RunE: func(cmd *cobra.Command, args []string) error {
		lines := args
		if len(lines) == 0 {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				lines = append(lines, scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				return errors.Wrap(err, "reading stdin")
			}
		}
		bad := 0
		for _, line := range lines {
			if _, err := arn.Parse(line); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", line, err)
				bad++
			}
		}
		if bad > 0 {
			return errors.Errorf("%d of %d ARNs invalid", bad, len(lines))
		}
		log.Printf("%d ARNs valid", len(lines))
		return nil
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List well-known identifier type tags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, t := range registry.Known() {
			kind, _ := registry.Describe(t)
			fmt.Printf("%-8s %s\n", t, kind)
		}
		return nil
	},
}

func init() {
	parseCmd.Flags().AddGoFlag(flag.Lookup("output"))

	newCmd.Flags().AddGoFlag(flag.Lookup("partition"))
	newCmd.Flags().AddGoFlag(flag.Lookup("service"))
	newCmd.Flags().AddGoFlag(flag.Lookup("category"))
	newCmd.Flags().AddGoFlag(flag.Lookup("tag"))

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tagsCmd)
}

func main() {
	flag.Parse()
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
