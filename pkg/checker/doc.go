// Package checker implements the version consistency checks run while
// packaging the browser extension.
//
// # Overview
//
// The build supplies a required version (for example "1.2.3-SNAPSHOT").
// Two independently maintained documents must agree with it:
//
//   - the extension manifest (manifest.json), whose "version" field must equal
//     the required version with the snapshot marker removed once;
//   - the parent build descriptor (pom.xml), whose top-level version must look
//     like "<major>.<minor>.<patch>x<suffix>" with suffix equal to the
//     required version verbatim.
//
// # Usage
//
//	c := checker.New(checker.WithVersion(version))
//	report, err := c.Run(ctx, checker.Request{
//	    RequiredVersion: "1.2.3-SNAPSHOT",
//	    ManifestPath:    "src/main/extension/manifest.json",
//	    DescriptorPath:  "../extensible-firefox-webdriver/pom.xml",
//	})
//	if errors.IsMismatch(err) {
//	    // anticipated failure, exit status 2
//	}
//
// Check functions return errors; they never terminate the process. Run stops
// after the first check that does not pass, so a descriptor is never read when
// the manifest check already failed.
package checker
