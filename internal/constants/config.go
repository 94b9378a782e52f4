package constants

// Command name constants used in tests and error messages.
// Cobra Use fields remain inline for CLI discoverability.
const (
	CatFileCmdName = "cat-file"
	LsTreeCmdName  = "ls-tree"
)

// Repository directory names define the on-disk store layout.
const (
	// GitDir is the repository metadata directory.
	GitDir = ".git"

	// ObjectsDir stores content-addressable objects under GitDir.
	ObjectsDir = "objects"
)

// Content hash properties. The store is keyed by SHA-1 addresses.
const (
	// HashByteLength is the byte length of a binary hash (20 bytes).
	HashByteLength = 20

	// HashStringLength is the hex string length of a hash (40 characters).
	HashStringLength = 40

	// HashDirPrefixLength is the subdirectory prefix length under objects/ (2 characters).
	HashDirPrefixLength = 2
)

// Tree entry mode tokens. A fixed vocabulary matched exactly;
// everything else classifies as unknown.
const (
	// ModeDirectory marks a subtree entry.
	ModeDirectory = "40000"

	// ModeDirectoryPadded is the zero-padded directory variant some writers emit.
	ModeDirectoryPadded = "040000"

	// ModeRegularFile marks a non-executable blob entry.
	ModeRegularFile = "100644"

	// ModeExecutable marks an executable blob entry.
	ModeExecutable = "100755"

	// ModeSymlink marks a symbolic link entry.
	ModeSymlink = "120000"

	// ModeSubmodule marks an embedded repository (commit reference) entry.
	ModeSubmodule = "160000"
)

// Object format constants.
const (
	// NullByte separates header from content in loose objects and
	// terminates entry names inside tree payloads.
	NullByte = '\x00'
)

// Configuration keys read through viper.
const (
	CfgGitDir    = "storage.git_dir"
	CfgLogLevel  = "logger.level"
	CfgLogFormat = "logger.format"
)
