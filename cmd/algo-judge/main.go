/*
 * Copyright (c) 2024 Yunshan Networks
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"io"
	"os"

	logging "github.com/op/go-logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/deepflowio/deepflow-algo/libs/fastio"
	"github.com/deepflowio/deepflow-algo/libs/logger"
)

var log = logging.MustGetLogger("algo-judge")

var RevCount, Revision, CommitDate string

type judge struct {
	configPath string
	logLevel   string
	logFile    string
	config     *Config

	in  io.Reader
	out io.Writer
}

func (j *judge) init(cmd *cobra.Command) error {
	config, err := loadConfig(j.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		config.LogLevel = j.logLevel
	}
	if cmd.Flags().Changed("log-file") {
		config.LogFile = j.logFile
	}
	if config.LogFile != "" {
		err = logger.InitLog(config.LogFile, config.LogLevel)
	} else {
		err = logger.InitConsoleLog(config.LogLevel)
	}
	if err != nil {
		return err
	}
	j.config = config
	return nil
}

func (j *judge) run(name string, solve solver) error {
	cin := fastio.NewCin(j.in, j.config.IO.readBufferBytes)
	cout := fastio.NewCout(j.out, j.config.IO.writeBufferBytes)
	plog := logger.NewPrefixLogger("algo-judge", "["+name+"]")
	plog.Infof("solving with buffers of %d/%d bytes", j.config.IO.readBufferBytes, j.config.IO.writeBufferBytes)
	err := solve(cin, cout)
	if flushErr := cout.Flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		plog.Errorf("failed: %s", err)
		return errors.Wrap(err, name)
	}
	plog.Infof("done")
	return nil
}

func (j *judge) registerProblemCommand(use, short, example string, solve solver) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Short:   short,
		Example: example,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return j.run(use, solve)
		},
	}
}

func newRootCommand(in io.Reader, out io.Writer) *cobra.Command {
	j := &judge{in: in, out: out}
	root := &cobra.Command{
		Use:           "algo-judge",
		Short:         "answer algorithm problems read from stdin",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return j.init(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&j.configPath, "config", "f", "", "config file location")
	root.PersistentFlags().StringVar(&j.logLevel, "log-level", DEFAULT_LOG_LEVEL, "log level")
	root.PersistentFlags().StringVar(&j.logFile, "log-file", "", "log file, console only when empty")

	root.AddCommand(j.registerProblemCommand("segtree",
		"point add/set, range sum/min and prefix search on a segment tree",
		"queries: '0 i x' add, '1 l r' sum, '2 i x' set, '3 l lim' longest prefix from l with sum <= lim (values >= 0), '4 l r' min",
		solveSegtree))
	root.AddCommand(j.registerProblemCommand("unionfind",
		"merge sets and test membership",
		"queries: '0 u v' unite, '1 u v' print 1 when u and v share a set",
		solveUnionFind))
	root.AddCommand(j.registerProblemCommand("rmq",
		"static range minimum",
		"queries: 'l r' min of [l, r)",
		solveRMQ))
	root.AddCommand(j.registerProblemCommand("convolve",
		"polynomial product mod 998244353",
		"input: 'n m', n coefficients, m coefficients",
		solveConvolve))
	root.AddCommand(j.registerProblemCommand("convolve-int",
		"exact polynomial product of small integers",
		"input: 'n m', n coefficients, m coefficients, each in [-4096, 4096]",
		solveConvolveInt))
	root.AddCommand(j.registerProblemCommand("factor",
		"prime factorisation of 64-bit integers",
		"input: 'q' then q integers, prints the count and the factors",
		solveFactor))
	root.AddCommand(j.registerProblemCommand("mo",
		"distinct values in ranges with Mo's algorithm",
		"queries: 'l r' number of distinct values in [l, r)",
		solveMo))
	root.AddCommand(&cobra.Command{
		Use:              "version",
		Short:            "print version",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(out, "%s-%s %s\n", RevCount, Revision, CommitDate)
		},
	})
	return root
}

func main() {
	root := newRootCommand(os.Stdin, os.Stdout)
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
