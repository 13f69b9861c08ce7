// Copyright 2021-2024 The ees Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in the
// LICENSE file

// Package errors provides helpers built around the standard error interface rather than
// an error taxonomy of its own: an owned error box (Error), a borrowed view (Ref), a printer
// for the complete cause chain, Newf/Wrap constructors and an entry-point adapter (Main)
// that reports a failing program as a readable chain and exits with a nonzero status.
//
//	func run() errors.MainResult {
//		data, err := os.ReadFile(name)
//		if err != nil {
//			return errors.Wrap(err, "failed to load %s", name)
//		}
//		if len(data) == 0 {
//			return errors.Bail("%s is empty", name)
//		}
//		return nil
//	}
//
//	func main() {
//		errors.Main(run)
//	}

package errors
