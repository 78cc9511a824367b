/*
Package file loads menus from YAML or JSON files.

	initial: root
	control: parametric
	header: history
	back: ".."
	structure:
	  root:
	    - settings: [volume, root]
	    - about
	leaves:
	  volume:
	    forward: [settings, root]
	    decide: {kind: lookup, param: level, values: {"0": 1}, default: 0}
	    parameters:
	      delimiter: '\s+'
	      fields:
	        - {name: level, regex: '\d+'}
	  about:
	    forward: [root]

The structure keeps the order of the file. Leaves without a decide block
always select their first forward target, unless the host registered a
Decider for them with WithDecider.
*/
package file
