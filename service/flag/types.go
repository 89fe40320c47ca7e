package flag

import (
	"github.com/elC0mpa/aws-tagger/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type service struct {
	root     *cobra.Command
	flags    model.Flags
	selected *pflag.FlagSet
}

type FlagService interface {
	GetParsedFlags(args []string) (model.Flags, error)
	FlagSet() *pflag.FlagSet
}
