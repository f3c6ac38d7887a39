// Package classify resolves carrier, region, and usage category for a
// parsed number from prefix tables, and serves directory profiles for
// the known carriers. The built-in tables cover the Indonesian numbering
// plan; callers can swap them out through classifier options.
package classify
