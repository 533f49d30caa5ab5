/*
Package inventory loads the declarative server inventory from YAML.

The inventory file declares the servers available for deployment, global
connection defaults, and the file-based environment variable tiers:

	defaults:
	  user: deploy
	  port: 22

	environments:
	  all:
	    TZ: UTC
	  production:
	    APP_ENV: production

	servers:
	  - name: main
	    role: manager
	    tags: [production]
	    host: 203.0.113.10
	    env:
	      APP_DEBUG: "false"
	  - name: worker-1
	    role: worker
	    tags: [production]

The "all" entry under environments applies to every tag; the remaining
entries are per-environment tiers. A server's role defaults to manager
when omitted.

Validation is structural only: unique non-empty names, at least one
non-empty tag per server, known roles, ports in range. Whether a server
can actually be reached is the resolution engine's concern — a server
declared here without a host is perfectly valid as long as an override
source supplies one at resolution time.
*/
package inventory
