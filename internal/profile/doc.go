// Package profile generates LXD profiles from a template and an update.
//
// The pipeline is:
//
//	load template -> expand cloud-init -> load update
//	  -> merge cloud-init keys -> merge -> contract cloud-init
//
// # Merge rules
//
// Merge combines a base (the template) with an overlay (the update):
//
//   - absent base: the overlay is taken as-is
//   - different kinds (mapping, sequence, scalar, absent): the base is kept
//   - mappings: shared keys merge recursively, new keys are appended
//   - sequences: overlay items are appended to base items
//   - scalars: the overlay replaces the base
//
// Merging is not commutative, and merging the same sequence overlay twice
// grows the sequence twice.
//
// # Cloud-init keys
//
// The config keys user.user-data, user.network-config, user.vendor-data and
// user.meta-data hold cloud-init documents. With cloud-init handling enabled
// they are loaded (from a path or inline YAML) into trees before merging and
// rendered back into literal "#cloud-config" blocks afterwards:
//
//	config:
//	  user.user-data: |
//	    #cloud-config
//	    packages:
//	      - git
package profile
