package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"sigs.k8s.io/yaml"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/config"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/calculators"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/params"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/retrieval"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/service"
)

// GlobalOptions are shared by every command that computes an estimate.
type GlobalOptions struct {
	Model      string
	ParamsFile string
	Set        []string

	out io.Writer
	cfg *config.Config
	raw params.Raw
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{
		out: os.Stdout,
	}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.Model, "model", o.Model, fmt.Sprintf("Height model. One of: (%s). Defaults to TOWER_PLANNER_HEIGHT_MODEL.", strings.Join(heightModels(), ", ")))
	fs.StringVarP(&o.ParamsFile, "file", "f", o.ParamsFile, "YAML or JSON file mapping parameter fields to values")
	fs.StringArrayVar(&o.Set, "set", o.Set, "Set a parameter field, as field=value. May be repeated; wins over --file.")
}

func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	o.out = cmd.OutOrStdout()

	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	o.cfg = cfg
	if o.Model == "" {
		o.Model = cfg.Planner.HeightModel
	}

	o.raw = params.Raw{}
	if o.ParamsFile != "" {
		fromFile, err := readParamsFile(o.ParamsFile)
		if err != nil {
			return err
		}
		for k, v := range fromFile {
			o.raw[k] = v
		}
	}
	for _, kv := range o.Set {
		field, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("invalid --set %q: expected field=value", kv)
		}
		o.raw[strings.TrimSpace(field)] = value
	}
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	if _, err := params.ParseHeightModel(o.Model); err != nil {
		return err
	}
	for field := range o.raw {
		if !params.IsField(field) {
			return service.NewErrInvalidField(field)
		}
	}
	return nil
}

// HeightModel is the validated --model value.
func (o *GlobalOptions) HeightModel() params.HeightModel {
	m, _ := params.ParseHeightModel(o.Model)
	return m
}

// Raw returns a copy of the collected parameter fields.
func (o *GlobalOptions) Raw() params.Raw {
	return o.raw.Clone()
}

// RetrievalService builds the calculation service from the configuration.
func (o *GlobalOptions) RetrievalService() *service.RetrievalService {
	estimator := retrieval.NewEstimator(
		retrieval.WithTieredLiftingOptions(calculators.WithMinLiftRatio(o.cfg.Planner.MinLiftRatio)),
	)
	return service.NewRetrievalService(estimator, o.HeightModel())
}

func readParamsFile(path string) (params.Raw, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading parameters file: %w", err)
	}
	raw := params.Raw{}
	// sigs.k8s.io/yaml accepts JSON as well
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing parameters file %s: %w", path, err)
	}
	return raw, nil
}

func heightModels() []string {
	out := make([]string, 0, len(params.HeightModels()))
	for _, m := range params.HeightModels() {
		out = append(out, string(m))
	}
	return out
}
