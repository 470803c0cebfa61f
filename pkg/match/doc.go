// Package match holds the comparison helpers used inside assertions.
//
// TypeMatcher stands for "any value of this type" and PartialDict for "a
// map carrying at least these entries". Both implement Matcher, so Equal
// and AssertArgs honor them wherever they sit inside an expected value,
// and both can be handed to testify mock expectations through Argument.
package match
