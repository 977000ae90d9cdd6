// Package query implements the pkg/client interfaces against an upstream
// chain node. Each querier makes a single attempt per call: there are no
// retries, no backoff and no caching, so repeated calls always reach the node.
package query
