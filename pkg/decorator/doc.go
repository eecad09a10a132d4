// Package decorator wraps command and query handlers with observability layers.
package decorator
