// Package crashreport keeps the crash keys attached to crash dumps.
//
// Reporting is configured by a crash_reporter.cfg file next to the
// executable. Without one, reporting stays disabled and crash keys are
// dropped. With one, PreSandboxStartup enables it for every process type
// except the zygote, whose children enable it after forking.
//
// A crash key has a size class that caps its value length:
//
//	small   64 bytes
//	medium  256 bytes
//	large   1024 bytes
//
// Key snapshots can be persisted to a Store; OpenSQLiteStore provides one
// backed by SQLite.
package crashreport
