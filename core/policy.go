package core

// resolveSeparator applies the centenarian separator convention. An absent
// separator is inferred from the age bracket. A supplied separator that
// contradicts the bracket is corrected when forgiving is on, and rejected
// in strict mode unless the correction was backed by an explicitly supplied
// century. The truth table is: fail iff contradiction and not (forgiving
// and centuryExplicit).
func resolveSeparator(
	centenarian bool,
	supplied Separator,
	centuryExplicit bool,
	forgiving bool,
	strict bool,
) (Separator, error) {
	expected := SeparatorHyphen
	if centenarian {
		expected = SeparatorPlus
	}
	if supplied == SeparatorNone {
		return expected, nil
	}
	if supplied == expected {
		return supplied, nil
	}

	final := supplied
	if forgiving {
		final = expected
	}
	if strict && !(forgiving && centuryExplicit) {
		return final, contradictionError("core: separator contradicts computed age bracket")
	}
	return final, nil
}
