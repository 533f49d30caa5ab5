/*
Package bundle encodes and decodes opaque connection bundles.

A connection bundle carries full SSH connection material (host, port,
user, private key, optional password) as a single override value, so an
operator can rotate a server's entire credential by replacing one secret
instead of four. The wire format is base64 of a JSON object:

	{"host": "...", "port": 22, "user": "...", "privateKey": "...", "password": "..."}

The format is byte-for-byte compatible with anything that generates such
bundles outside this engine; field names must not change.

# Decoding

Decode runs five checks, each with its own typed failure:

 1. base64 decode             → InvalidEncoding
 2. JSON object parse         → InvalidStructure
 3. host/user/privateKey set  → MissingField (names the field)
 4. port in [1, 65535]        → InvalidPort (number or numeric string;
    absent defaults to 22)
 5. PEM BEGIN/END markers     → InvalidPrivateKey

Errors are values (*DecodeError), never panics: malformed bundles are
expected input during credential rotation and must not poison resolution
of the other servers in the same call.

# Key Normalization

Private key text arrives with literal "\n" escapes when authored in CI
secret stores, and with CRLF endings when pasted on Windows. Decode
normalizes both to plain LF lines with a single trailing newline before
validating the PEM markers, so the key is ready to hand to an SSH client
or write to disk.
*/
package bundle
