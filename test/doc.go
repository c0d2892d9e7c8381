// This file is part of Shortcuts.
//
// Shortcuts is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Shortcuts is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Shortcuts.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions for the package tests in this
// module.
//
// Expect functions record a failure and let the test carry on. Demand
// functions stop the test, which is what is wanted when the rest of the test
// would be meaningless. Checking the length of a slice before indexing it is
// the usual case.
//
// Success and failure depend on the type of the value. nil is a success, a
// bool is a success when it is true and an error is a success when it is nil.
// Other types cannot be tested for success.
//
// CompareWriter captures output written to an io.Writer, the central log for
// example, for comparison with the expected text.
package test
