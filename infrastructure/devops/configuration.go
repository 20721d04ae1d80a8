package devops

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

type AppConfig struct {
	DatabaseDSN string `yaml:"databaseDsn"`
	TokenSecret string `yaml:"tokenSecret"`
	PhotoBucket string `yaml:"photoBucket"`
}

var (
	once    sync.Once
	appCfg  AppConfig
	loadErr error
)

// LoadAppConfig reads the service configuration from the fieldops SSM
// parameter (a yaml document). FIELDOPS_CONFIG overrides the parameter
// with a local yaml file for development.
func LoadAppConfig(ctx context.Context) (AppConfig, error) {
	once.Do(func() {
		if path := os.Getenv("FIELDOPS_CONFIG"); path != "" {
			raw, err := os.ReadFile(path)
			if err != nil {
				loadErr = fmt.Errorf("read local config: %w", err)
				return
			}
			loadErr = yaml.Unmarshal(raw, &appCfg)
			return
		}

		paramName := "fieldops"

		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			loadErr = fmt.Errorf("load aws config: %w", err)
			return
		}

		client := ssm.NewFromConfig(cfg)

		out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
			Name:           aws.String(paramName),
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			loadErr = fmt.Errorf("get parameter: %w", err)
			return
		}

		if err := yaml.Unmarshal([]byte(*out.Parameter.Value), &appCfg); err != nil {
			loadErr = fmt.Errorf("unmarshal yaml: %w", err)
			return
		}
	})

	return appCfg, loadErr
}
