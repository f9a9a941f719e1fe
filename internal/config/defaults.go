package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Provider ProviderConfig `json:"provider"`
	Agent    AgentConfig    `json:"agent"`
	Tools    ToolsConfig    `json:"tools"`
}

type ProviderConfig struct {
	Model string `json:"model"` // Default: gemini-2.0-flash-001
}

type AgentConfig struct {
	SystemPrompt string `json:"system_prompt"`
}

type ToolsConfig struct {
	// File Operations
	MaxFileSize  int64 `json:"max_file_size"`  // Default: 10 * 1024 * 1024 (10MB)
	MaxReadChars int   `json:"max_read_chars"` // Default: 10000

	// Directory Listing
	RespectGitignore bool `json:"respect_gitignore"` // Default: true

	// Script Execution
	ScriptSuffix         string `json:"script_suffix"`           // Default: .py
	Interpreter          string `json:"interpreter"`             // Default: python3
	MaxCommandOutputSize int64  `json:"max_command_output_size"` // Default: 1 * 1024 * 1024 (1MB)
}

// DefaultSystemPrompt tells the model which operations exist and that paths are relative.
const DefaultSystemPrompt = `You are a helpful AI coding agent.

When a user asks a question or makes a request, make a function call plan. You can perform the following operations:

- List files and directories
- Read file contents
- Execute Python files with optional arguments
- Write or overwrite files

All paths you provide should be relative to the working directory. You do not need to specify the working directory in your function calls as it is automatically injected for security reasons.`

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderConfig{
			Model: "gemini-2.0-flash-001",
		},
		Agent: AgentConfig{
			SystemPrompt: DefaultSystemPrompt,
		},
		Tools: ToolsConfig{
			MaxFileSize:          10 * 1024 * 1024,
			MaxReadChars:         10000,
			RespectGitignore:     true,
			ScriptSuffix:         ".py",
			Interpreter:          "python3",
			MaxCommandOutputSize: 1 * 1024 * 1024,
		},
	}
}
