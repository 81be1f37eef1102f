package cmd

import (
	"flag"

	"github.com/etnz/rebalance/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the application: global
// flags, subcommands and their flags.
func Completion(global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(global),
	}
	for _, cmds := range Commands {
		for _, c := range cmds {
			fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(fs)
			sub := &complete.Command{Flags: flagPredictors(fs)}
			if c.Name() == "topic" {
				topics, _ := docs.GetAllTopics()
				sub.Args = predict.Set(topics)
			}
			root.Sub[c.Name()] = sub
		}
	}
	return root
}

// flagPredictors returns a predictor for every flag in fs.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	res := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		switch {
		case f.Name == "portfolio-file":
			res[f.Name] = predict.Files("*.json")
		case isBoolFlag(f):
			res[f.Name] = predict.Nothing
		default:
			res[f.Name] = predict.Something
		}
	})
	return res
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
