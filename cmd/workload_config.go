package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/dispatch-sim/dispatch-sim/sim/workload"
)

// Define struct for YAML
type WorkloadConfig struct {
	Workloads map[string]Workload `yaml:"workloads"`
}

type Workload struct {
	Count      int   `yaml:"count"`
	ArrivalMax int64 `yaml:"arrival_max"`
	BurstMin   int64 `yaml:"burst_min"`
	BurstMax   int64 `yaml:"burst_max"`
}

// GetWorkloadSpec looks up a named random-workload shape in a YAML config
// file and returns it as a workload Spec, or nil when the name is absent.
func GetWorkloadSpec(workloadFilePath string, workloadType string) *workload.Spec {
	// Read YAML file
	data, err := os.ReadFile(workloadFilePath)
	if err != nil {
		panic(err)
	}

	// Parse YAML
	var cfg WorkloadConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		panic(err)
	}

	if wl, workloadExists := cfg.Workloads[workloadType]; workloadExists {
		logrus.Infof("Using preset workload %v\n", workloadType)
		return &workload.Spec{Random: &workload.RandomSpec{
			Count:      wl.Count,
			ArrivalMax: wl.ArrivalMax,
			BurstMin:   wl.BurstMin,
			BurstMax:   wl.BurstMax,
		}}
	}
	return nil
}
