package normalized_test

// Class documentation of java.lang.String, with indented code lines and
// empty lines in between.
const scenarioB = "The String class represents character strings. All string literals in Java 1.6 programs, such as \"abc\", are implemented as instances of this class.\n" +
	"Strings are constant; their values cannot be changed after they are created. String buffers support mutable strings. Because String objects are immutable they can be shared. For example:\n" +
	"       String str = \"abc\";\n" +
	"\n" +
	"is equivalent to:\n" +
	"       char data[] = {'a', 'b', 'c'};\n" +
	"       String str = new String(data);\n" +
	"\n" +
	"Here are some more examples of how strings can be used:\n" +
	"       System.out.println(\"abc\");\n" +
	"       String cde = \"cde\";\n" +
	"       System.out.println(\"abc\" + cde);\n" +
	"       String c = \"abc\".substring(2, 3);\n" +
	"       String d = cde.substring(1, 2);\n" +
	"\n" +
	"The class String includes methods for examining individual characters of the sequence, for comparing strings, for searching strings, for extracting substrings, and for creating a copy of a string with all characters translated to uppercase or to lowercase. Case mapping is based on the Unicode Standard version specified by the Character class.\n"

const scenarioBNormalized = "the string class represents character strings. all string literals in java 16 programs, such as abc , are implemented as instances of this class. \n" +
	"strings are constant their values cannot be changed after they are created. string buffers support mutable strings. because string objects are immutable they can be shared. for example string str abc\n" +
	"\n" +
	"is equivalent to char data a , b , c string str new string data\n" +
	"\n" +
	"here are some more examples of how strings can be used system. out. println abc string cde cde system. out. println abc cde string c abc . substring 2, 3 string d cde. substring 1, 2\n" +
	"\n" +
	"the class string includes methods for examining individual characters of the sequence, for comparing strings, for searching strings, for extracting substrings, and for creating a copy of a string with all characters translated to uppercase or to lowercase. case mapping is based on the unicode standard version specified by the character class."
