// Package client defines the interfaces through which the gateway talks to
// the upstream chain node. Interfaces avoid cosmos-sdk types in their
// signatures so that handlers and tests do not depend on the node's wire
// format; implementations live in pkg/client/query.
package client
