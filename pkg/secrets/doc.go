/*
Package secrets resolves override values from a flat variable namespace.

The override source is a plain string-to-string mapping (the process
environment in the CLI, synthetic maps in tests) injected as a Store. On
top of it the Resolver implements the layered secret lookup used by every
connection-field and variable override in the engine:

 1. {ENV}_{SERVER}_{VAR} — server-scoped, only when a server name is given
    and the value is non-empty
 2. {ENV}_{VAR} — environment-scoped

Environment tag and server name are upper-cased when deriving keys; the
server name is used verbatim beyond that. Absence at both levels is a
normal (value, false) outcome, never an error.

Example: with environment "production" and server "main", the variable
HOST resolves from PRODUCTION_MAIN_HOST, then PRODUCTION_HOST.

The six reserved names (CONNECTION, HOST, USER, PORT, SSH_PRIVATE_KEY,
PASSWORD) identify connection material. They resolve through Get like any
other variable but are excluded from the free-form override scans in the
environment merger, so a connection secret can never leak into a deployed
service's environment.
*/
package secrets
