package imperat

// WithCommandAliases adds alternative names the command can be invoked by
func WithCommandAliases(aliases ...string) ConfigureCommandFunc {
	return func(command *Command) {
		command.aliases = append(command.aliases, aliases...)
	}
}

// WithCommandDescription sets the description for the command. This description helps users to understand what the command does.
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(command *Command) {
		command.description = description
	}
}

// WithCommandPermission requires permission to match the command or any of its sub-commands
func WithCommandPermission(permission string) ConfigureCommandFunc {
	return func(command *Command) {
		command.permission = permission
	}
}

// WithUsage adds a usage to the command
func WithUsage(usage *Usage) ConfigureCommandFunc {
	return func(command *Command) {
		command.Usage(usage)
	}
}

// WithDefaultExecutor sets the executor run when the command is invoked without arguments
func WithDefaultExecutor(fn ExecutorFunc) ConfigureCommandFunc {
	return func(command *Command) {
		command.defaultUsage = &Usage{executor: fn}
		command.defaultUsage.declared = command.defaultUsage
	}
}

// WithSubCommand function attaches a sub-command using the given attachment mode.
func WithSubCommand(sub *Command, mode AttachmentMode) ConfigureCommandFunc {
	return func(command *Command) {
		command.SubCommand(sub, mode)
	}
}
