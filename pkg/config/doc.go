/*
Package config loads addheader settings.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	   +---------+-----+-----+---------+
	   |         |           |         |
	+--+---+ +---+--+    +---+--+  +---+--+
	| YAML | | JSON |    | HCL  |  | TOML |
	+------+ +------+    +------+  +------+

🎯 Purpose:
- Reads the header template (inline or from template_file)
- Says where the author identity comes from
- Selects the files a directory run stamps (include / exclude globs)

🔄 Flow:
1. Find locates .addheader.* in the working directory, then the XDG config dirs
2. The parser registered for the extension decodes the file; unknown keys fail
3. Validate reads template_file, rejects an empty template, fills defaults

📝 Example (.addheader.yaml):

	template: |
	  // <copyright file="{class-interface}.cs">
	  //   {namespace}, {date:yyyy}
	  // </copyright>
	  // <author>{author} ({email})</author>
	identity:
	  path: ~/.config/addheader/identity.yaml
	  sources: [file, git, env]
	skip_existing: true
*/
package config
