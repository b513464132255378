package config

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"aiforge/constants/lipgloss"
)

// Config represents the structure of the configuration file
type Config struct {
	Version      string             `mapstructure:"version"`
	Theme        string             `mapstructure:"theme"`
	PythonBinary string             `mapstructure:"python_binary"`
	DatabaseFile string             `mapstructure:"database_file"`
	Directories  *DirectoriesConfig `mapstructure:"directories"`
	Scripts      *ScriptsConfig     `mapstructure:"scripts"`
}

// DirectoriesConfig holds the overridable destination directory names. The
// defaults are the names the downstream dataset scripts consume.
type DirectoriesConfig struct {
	CodeExamples    string `mapstructure:"code_examples"`
	APITrainingData string `mapstructure:"api_training_data"`
}

// ScriptsConfig maps dataset and fine-tuning targets onto the external
// Python scripts.
type ScriptsConfig struct {
	Examples    string `mapstructure:"examples"`
	API         string `mapstructure:"api"`
	Unified     string `mapstructure:"unified"`
	FineTune    string `mapstructure:"finetune"`
	FineTuneMLX string `mapstructure:"finetune_mlx"`
	SetupMLX    string `mapstructure:"setup_mlx"`
}

// DefaultConfig values
var DefaultConfig = Config{
	Version:      "1.0.0",
	Theme:        "dracula",
	PythonBinary: "python3",
	DatabaseFile: ".aiforge/workflow.db",
	Directories: &DirectoriesConfig{
		CodeExamples:    "code_examples",
		APITrainingData: "api_training_data",
	},
	Scripts: &ScriptsConfig{
		Examples:    "scripts/create_dataset.py",
		API:         "scripts/generate_api_optimized_dataset.py",
		Unified:     "scripts/generate_unified_dataset.py",
		FineTune:    "scripts/run_finetuning.py",
		FineTuneMLX: "scripts/run_finetuning_mlx.py",
		SetupMLX:    "scripts/setup_mlx.py",
	},
}

// cfgFile holds the path to the configuration file (set via CLI)
var cfgFile string

// LoadConfigs initializes the configuration from file, flags, and environment variables, and returns the final config.
func LoadConfigs(rootCmd *cobra.Command, cwd string) *Config {
	var config *Config

	setDefaults()

	viper.AutomaticEnv()
	bindEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error reading config file: %v", err)))
			os.Exit(1)
		}
	} else {
		// Look for configuration files in the project root
		viper.SetConfigName("aiforge-config")
		viper.AddConfigPath(cwd)

		viper.SetConfigType("yaml")
		if err := viper.ReadInConfig(); err != nil {
			viper.SetConfigType("json")
			_ = viper.ReadInConfig() // no config file found, continue with defaults
		}
	}

	bindFlags(rootCmd)

	if err := viper.Unmarshal(&config); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Unable to decode into struct: %v", err)))
		os.Exit(1)
	}

	return config
}

// setDefaults sets all default configuration values
func setDefaults() {
	viper.SetDefault("version", DefaultConfig.Version)
	viper.SetDefault("theme", DefaultConfig.Theme)
	viper.SetDefault("python_binary", DefaultConfig.PythonBinary)
	viper.SetDefault("database_file", DefaultConfig.DatabaseFile)
	viper.SetDefault("directories.code_examples", DefaultConfig.Directories.CodeExamples)
	viper.SetDefault("directories.api_training_data", DefaultConfig.Directories.APITrainingData)
	viper.SetDefault("scripts.examples", DefaultConfig.Scripts.Examples)
	viper.SetDefault("scripts.api", DefaultConfig.Scripts.API)
	viper.SetDefault("scripts.unified", DefaultConfig.Scripts.Unified)
	viper.SetDefault("scripts.finetune", DefaultConfig.Scripts.FineTune)
	viper.SetDefault("scripts.finetune_mlx", DefaultConfig.Scripts.FineTuneMLX)
	viper.SetDefault("scripts.setup_mlx", DefaultConfig.Scripts.SetupMLX)
}

// bindEnv explicitly binds environment variables to configuration keys
func bindEnv() {
	_ = viper.BindEnv("theme", "AIFORGE_THEME")
	_ = viper.BindEnv("python_binary", "AIFORGE_PYTHON")
	_ = viper.BindEnv("database_file", "AIFORGE_DATABASE_FILE")
	_ = viper.BindEnv("directories.code_examples", "AIFORGE_CODE_EXAMPLES_DIR")
	_ = viper.BindEnv("directories.api_training_data", "AIFORGE_API_TRAINING_DATA_DIR")
}

// bindFlags binds the CLI flags to configuration values.
func bindFlags(rootCmd *cobra.Command) {
	_ = viper.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))
	_ = viper.BindPFlag("python_binary", rootCmd.PersistentFlags().Lookup("python_binary"))
	_ = viper.BindPFlag("directories.code_examples", rootCmd.PersistentFlags().Lookup("code_examples_dir"))
	_ = viper.BindPFlag("directories.api_training_data", rootCmd.PersistentFlags().Lookup("api_training_data_dir"))
}

// InitFlags initializes the flags for the root command.
func InitFlags(rootCmd *cobra.Command) {
	// Use PersistentFlags so that these flags are available in all subcommands
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Specifies the path to a configuration file (JSON or YAML) that contains all the settings for the application.")

	rootCmd.PersistentFlags().String("theme", DefaultConfig.Theme, "Syntax highlighting theme for file previews (e.g., 'dracula', 'monokai').")
	rootCmd.PersistentFlags().String("python_binary", DefaultConfig.PythonBinary, "Python interpreter used to run the dataset generation scripts.")
	rootCmd.PersistentFlags().String("code_examples_dir", DefaultConfig.Directories.CodeExamples, "Name of the code examples destination directory under the project root.")
	rootCmd.PersistentFlags().String("api_training_data_dir", DefaultConfig.Directories.APITrainingData, "Name of the API training data destination directory next to the project root.")
	rootCmd.PersistentFlags().String("project_root", "", "Project root directory (defaults to the current working directory).")

	rootCmd.Flags().BoolP("version", "v", false, "Specifies the version of the application.")
}
