/*
Package log provides structured logging for Dockflow using zerolog.

The log package wraps zerolog to provide a single globally initialized
logger with configurable level and output format, plus child-logger
helpers that attach the fields the resolution engine cares about.

# Usage

Initialize once at startup:

	log.Init(log.Config{
		Level:      log.InfoLevel,
		JSONOutput: false,
	})

Component loggers:

	logger := log.WithComponent("failover")
	logger.Info().Str("manager", name).Msg("probing manager")

Environment and server scoped loggers:

	log.WithEnvironment("production").Debug().Msg("resolving servers")
	log.WithServer("main").Warn().Msg("no resolvable host, skipping")

# Severity Policy

The resolution engine itself logs at debug, info, and warn only. Fatal
configuration conditions (an environment with no resolvable manager, no
reachable manager during failover) are returned to the caller as typed
absence; only the CLI boundary turns them into error output and a non-zero
exit.
*/
package log
