// Package pom reads namespaced build descriptors (Maven project object
// models) and exposes the version recorded at the top level of the document.
//
// Only elements that are direct children of the document element and that
// belong to the configured namespace are considered:
//
//	<project xmlns="http://maven.apache.org/POM/4.0.0">
//	  <parent><version>1.0</version></parent>   <!-- ignored -->
//	  <version>0.1.7x1.2.3-SNAPSHOT</version>   <!-- Version() -->
//	</project>
//
// Documents declaring a non-UTF-8 encoding are decoded through
// golang.org/x/net/html/charset.
package pom
